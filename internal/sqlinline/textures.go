package sqlinline

const QCreateTexturesTable = `--sql 7574b59a-9103-4e83-9365-1532d57b5501
create table if not exists textures (
  id uuid primary key,
  request_id text not null default '',
  planet_type text not null,
  star_type text not null,
  radius double precision not null,
  mass double precision not null,
  star_temperature double precision not null,
  distance double precision not null,
  surface_temperature double precision not null,
  prompt text not null,
  provider text not null,
  status text not null,
  storage_key text not null default '',
  mime text not null default '',
  bytes bigint not null default 0,
  created_at timestamptz not null default now()
);
`

const QCreateTexturesCreatedAtIndex = `--sql 3f9d8e63-7f81-4106-b3a6-765961f967c4
create index if not exists textures_created_at_idx on textures (created_at desc);
`

const QInsertTexture = `--sql a0c320fe-5734-4b92-a4da-6d623441d3c7
insert into textures(
  id,
  request_id,
  planet_type,
  star_type,
  radius,
  mass,
  star_temperature,
  distance,
  surface_temperature,
  prompt,
  provider,
  status,
  storage_key,
  mime,
  bytes,
  created_at
) values (
  $1::uuid,
  $2::text,
  $3::text,
  $4::text,
  $5::float8,
  $6::float8,
  $7::float8,
  $8::float8,
  $9::float8,
  $10::text,
  $11::text,
  $12::text,
  $13::text,
  $14::text,
  $15::bigint,
  now()
) returning created_at;
`

const QSelectTextureByID = `--sql 298959ee-1301-4e53-9106-7b05c953c547
select
  id::text,
  request_id,
  planet_type,
  star_type,
  radius,
  mass,
  star_temperature,
  distance,
  surface_temperature,
  prompt,
  provider,
  status,
  storage_key,
  mime,
  bytes,
  created_at
from textures
where id = $1::uuid
limit 1;
`

const QListRecentTextures = `--sql 92e1be01-a183-4f6c-9596-2ee987eb90e2
select
  id::text,
  request_id,
  planet_type,
  star_type,
  radius,
  mass,
  star_temperature,
  distance,
  surface_temperature,
  prompt,
  provider,
  status,
  storage_key,
  mime,
  bytes,
  created_at
from textures
order by created_at desc
limit $1::int;
`
